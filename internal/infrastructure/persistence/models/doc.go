// Package models contains the GORM database models (infrastructure concern)
// and their converters to and from the domain entities.
package models
