package metrics

const Namespace = "blog"
