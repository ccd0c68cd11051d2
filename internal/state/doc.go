// Package state holds the UI state of a dexview session: the output region
// content and the loading flag.
//
// # Ownership
//
// The presenter creates the Store and is its only writer. Front ends read
// copies through Snapshot and never mutate the store directly.
//
//	Writer (presenter):            Reader (UI):
//	┌──────────────────┐          ┌──────────────────┐
//	│ BeginLoading()   │          │                  │
//	│ BeginClear()     │          │                  │
//	│ Succeed()/Fail() │─────────→│ Snapshot()       │
//	│ StopLoading()    │ (mutex)  │   ↓ render       │
//	└──────────────────┘          └──────────────────┘
//
// # Sequencing
//
// BeginLoading and BeginClear hand out monotonically increasing tokens and
// enter their phase under the same lock. Succeed and Fail can be told to
// drop the write when a newer token exists, and StopLoading to leave the
// flag raised when a newer lookup owns it. Whether to drop is the caller's
// policy; the check itself happens under the store's lock.
package state
