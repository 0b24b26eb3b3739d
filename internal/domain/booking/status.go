package booking

type Status string

const (
	StatusPending     Status = "Pending"
	StatusApproved    Status = "Approved"
	StatusRescheduled Status = "Rescheduled"
	StatusCancelled   Status = "Cancelled"
)

func InitialStatus() Status {
	return StatusPending
}
