// Package domain contains the entities of the tour marketplace as they are
// persisted. Entities carry no behavior beyond bookkeeping; the rules they
// must obey (uniqueness, references, ranges) are enforced by the storage
// schema and surface as integrity violations.
package domain
