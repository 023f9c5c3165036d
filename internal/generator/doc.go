// Package generator produces random passwords for new vault entries.
package generator
