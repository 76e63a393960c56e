// Package notifier provides the notification interface and implementations
// for posting game announcements.
//
// The webhook notifier delivers messages to a chat webhook endpoint as a
// JSON payload; the dry-run notifier prints them to stdout for local use.
package notifier
