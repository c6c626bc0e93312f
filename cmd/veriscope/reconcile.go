// cmd/veriscope/reconcile.go
package main

// ReconcileVerdicts merges the local-model signal with the AI-checker signal
// into one verdict.
//
// Policy: the AI signal, when present, is the primary authority. Its label and
// confidence become the verdict wholesale and the probability split is rebuilt
// from its confidence; the local model exists as an availability fallback, not
// a voting peer. With no AI signal the local signal passes through verbatim
// with is_fake recomputed from its label.
func ReconcileVerdicts(local, ai *PredictionSignal) Verdict {
	if ai != nil {
		return Verdict{
			Label:         ai.Label,
			Confidence:    ai.Confidence,
			Probabilities: binaryProbabilities(ai.Label, ai.Confidence),
			IsFake:        ai.Label == LabelFake,
		}
	}

	if local != nil {
		probabilities := local.Probabilities
		if probabilities == nil {
			probabilities = binaryProbabilities(local.Label, local.Confidence)
		}
		return Verdict{
			Label:         local.Label,
			Confidence:    local.Confidence,
			Probabilities: probabilities,
			IsFake:        local.Label == LabelFake,
		}
	}

	// Every signal source is down. Emit the weakest well-formed verdict
	// rather than an error.
	return Verdict{
		Label:         LabelReal,
		Confidence:    0.5,
		Probabilities: binaryProbabilities(LabelReal, 0.5),
		IsFake:        false,
	}
}
