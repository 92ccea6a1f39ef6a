// Package event provides the synchronous pub-sub bus that media resources
// use to announce playback lifecycle changes. Controllers subscribe to a
// resource's bus and hold the subscription IDs so they can detach cleanly
// when the active resource is swapped for another one.
package event
