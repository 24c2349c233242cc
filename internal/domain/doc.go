// Package domain contains the core business entities of the vocabulary
// tracker: words, groups, study activities, study sessions, and word review
// items, together with their validation rules. It is independent of any
// specific storage or delivery mechanism.
package domain
