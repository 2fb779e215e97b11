package dto

type DanglingRefItem struct {
	TimeBlockID string `json:"time_block_id"`
	TaskID      string `json:"task_id"`
	Cleared     bool   `json:"cleared"`
}

type SweepResponse struct {
	From     string            `json:"from"`
	To       string            `json:"to"`
	Applied  bool              `json:"applied"`
	Dangling []DanglingRefItem `json:"dangling"`
}
