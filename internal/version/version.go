package version

// Version is the toolkit release string stamped into --version output.
const Version = "1.0.0"
