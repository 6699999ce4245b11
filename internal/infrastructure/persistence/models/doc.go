// Package models contains the GORM database models. They mirror the domain
// entities but carry persistence concerns (column types, indexes) that do
// not belong in the domain layer.
package models
