package ports

type ForgeMetrics interface {
	RecordSuccess(op string)
	RecordConflict()
	RecordFailure()
}
