// Package zone resolves the default time zone used when a calendar value carries no offset.
// Resolvers are consulted on every call, so reconfiguring the default zone is observed
// by the next conversion.
package zone
