// Package config loads the site configuration file found at the root of a
// content directory.
package config
