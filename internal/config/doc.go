// Package config locates the files the registration helper reads and writes.
// There is no runtime configuration surface: both filenames are fixed and
// resolved against the directory that holds the running executable.
package config
