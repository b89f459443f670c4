// Package profiles contains the customer and companion profile entities
// together with the discover/match query objects and the service and
// repository contracts for profile browsing and like/pass/friend
// interactions.
package profiles
