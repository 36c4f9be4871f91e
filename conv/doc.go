// Package conv converts between calendar value representations.
// It provides the timestamp to calendar and calendar to timestamp converters, and
// a type pair registry used by mapping code to look up conversion functions
// registered per source/destination type.
package conv
