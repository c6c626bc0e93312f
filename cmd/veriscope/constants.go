// cmd/veriscope/constants.go
package main

const (
	// VERSION is the current application version
	VERSION = "1.0.0"

	// Claim text longer than this is rejected at the API boundary
	maxClaimLength = 10000

	// Upper bound on texts accepted by a single batch-predict call
	maxBatchSize = 25

	// Stored history entries keep at most this much of the claim text
	maxStoredTextLength = 500
)
