// Package scanner lists the immediate subdirectories of an extensions root
// and tokenizes each directory name into a logical extension name and a
// semantic version. Results are collected into an Inventory that preserves
// directory listing order.
package scanner
