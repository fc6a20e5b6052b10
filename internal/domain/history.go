package domain

// EpochRecord holds the metrics measured at the end of one epoch.
type EpochRecord struct {
	Epoch   int     `json:"epoch"`
	RMSE    float64 `json:"root_mean_squared_error"`
	ValRMSE float64 `json:"val_root_mean_squared_error"`
}

// History is the ordered per-epoch record of a training run.
type History struct {
	Records       []EpochRecord `json:"records"`
	HasValidation bool          `json:"has_validation"`
}

// Append adds the record for the next epoch.
func (h *History) Append(r EpochRecord) {
	h.Records = append(h.Records, r)
}

// Len returns the number of recorded epochs.
func (h *History) Len() int {
	return len(h.Records)
}

// Epochs returns the epoch indices.
func (h *History) Epochs() []int {
	out := make([]int, len(h.Records))
	for i, r := range h.Records {
		out[i] = r.Epoch
	}
	return out
}

// RMSE returns the training RMSE series.
func (h *History) RMSE() []float64 {
	out := make([]float64, len(h.Records))
	for i, r := range h.Records {
		out[i] = r.RMSE
	}
	return out
}

// ValRMSE returns the validation RMSE series, or nil when the run held out
// no validation rows.
func (h *History) ValRMSE() []float64 {
	if !h.HasValidation {
		return nil
	}
	out := make([]float64, len(h.Records))
	for i, r := range h.Records {
		out[i] = r.ValRMSE
	}
	return out
}

// Last returns the final record. ok is false for an empty history.
func (h *History) Last() (EpochRecord, bool) {
	if len(h.Records) == 0 {
		return EpochRecord{}, false
	}
	return h.Records[len(h.Records)-1], true
}
