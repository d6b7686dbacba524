// Package maltlock provides the core of a listing crawler for a fixed set
// of third-party sites. It extracts "top/ranked item" listings from raw HTML
// using per-site pattern parsers, derives stable item identities, and upserts
// the results into per-site persistent storage with insert/update accounting.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, regex/, goquery/).
package maltlock
