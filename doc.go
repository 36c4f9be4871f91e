// Package caltime defines calendar values exchanged by mapping code: Timestamp, an instant with every
// calendar field and a zone, and Calendar, where each field is independently set or undefined.
package caltime
