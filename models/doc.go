// Package models holds the data shapes shared across the builder: the
// bundler configuration object emitted by the builders and the
// project-configuration document read from app.config.*.
//
// Every type carries json and yaml tags matching the key names the bundler
// expects, so a *Configuration can be encoded and handed to the bundler as is.
package models
