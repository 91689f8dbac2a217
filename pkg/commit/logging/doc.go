// Package logging is the slog-backed facade used by the registry runner and
// the cbcommit CLI.
//
//	logger := logging.NewText(os.Stderr, slog.LevelDebug)
//	logger.With("scheme", "pedersen").Info(ctx, "round trip", "verified", ok)
//
// # Redaction
//
// Openings, blinding factors, lattice randomness and agreed-setup seeds are
// secret. Handlers returned by NewText and NewJSON replace the values of the
// keys opening, randomness, blinding and seed with a placeholder. Mark them
// explicitly anyway:
//
//	logger.Debug(ctx, "commitment created",
//	    "commitment", com.String(),
//	    logging.Redacted("opening"),
//	)
//	// Logs: opening="[redacted]"
//
// Commitments and public keys are public and may be logged through their
// String methods.
package logging
