// Package pokeapi provides the read-only client dexview uses to look up a
// species in the public PokeAPI catalog.
//
// # Overview
//
// The package owns exactly one outbound call:
//
//	GET https://pokeapi.co/api/v2/pokemon/{lower-cased name}
//
// The response is decoded into a narrow SubjectInfo (name, weight in
// kilograms, abilities in slot order). Nothing else in the catalog schema is
// read or validated.
//
// # Client Usage
//
//	client, err := pokeapi.NewClient(pokeapi.Options{Timeout: 10 * time.Second})
//	if err != nil {
//		return err
//	}
//	info, err := client.FetchSubjectInfo(ctx, "Ditto")
//
// # Error Handling
//
// Every failure is a *Error carrying a Kind:
//
//   - KindTransport: DNS, dial, TLS, timeout or context cancellation before a response
//   - KindHTTPStatus: any non-2xx answer; Status holds the code (404 for unknown species)
//   - KindParse: invalid JSON, or a body missing name, weight or abilities
//
// Use errors.Is with ErrTransport, ErrStatus, ErrNotFound or ErrParse, or
// errors.As to reach the Status and Cause.
//
// # Design Rationale
//
//   - No caching (each selection is a fresh lookup)
//   - No retries (a failed attempt is final and reported to the caller)
//   - No custom headers or query parameters
package pokeapi
