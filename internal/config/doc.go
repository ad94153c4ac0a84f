// Package config defines the format-agnostic project model and the Loader
// interface that reads it. Concrete formats, such as HCL, live in their own
// packages.
package config
