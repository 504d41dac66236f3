package models

// FamilyNotification is the simulated approval request sent to a nominee.
type FamilyNotification struct {
	Status              string   `json:"status"`
	NotificationSent    bool     `json:"notification_sent"`
	NomineeName         string   `json:"nominee_name"`
	NotificationMessage string   `json:"notification_message"`
	AwaitingResponse    bool     `json:"awaiting_response"`
	ApprovalOptions     []string `json:"approval_options"`
	MessageToUser       string   `json:"message_to_user"`
	HindiMessage        string   `json:"hindi_message"`
}
