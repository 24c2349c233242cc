// Package store defines the persistence interfaces of the vocabulary
// tracker: the inventory (words, groups, memberships), the activity catalog,
// the session ledger, the review recorder, the statistics reads, and the
// reset operations. These interfaces keep the business rules independent of
// the concrete database; the Postgres implementations live in
// internal/platform/postgres.
package store
