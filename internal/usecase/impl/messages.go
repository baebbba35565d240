package impl

import (
	"fmt"
	"unicode/utf8"

	"bloodbridge/internal/domain/entity"
)

// Message rendering for the SMS/push channels. Carriers reject oversized
// payloads outright, so every rendered body passes through truncate before
// it reaches a channel port.

const alertTitle = "BloodBridge Alert"

func renderDonorAlert(request *entity.BloodRequest) string {
	location := request.PostalCode
	if location == "" {
		location = "your area"
	}

	urgency := ""
	if request.Urgent {
		urgency = "URGENT: "
	}

	return fmt.Sprintf(
		"%s%s blood needed for %s (%d ml) near %s. Reply or call the blood bank if you can donate.",
		urgency, request.BloodGroup, request.PatientName, request.Units, location,
	)
}

func renderRequestorConfirmation(request *entity.BloodRequest, notified int) string {
	return fmt.Sprintf(
		"Your %s blood request (%d ml) was received and %d nearby donors were alerted. The blood bank will contact you once it is reviewed.",
		request.BloodGroup, request.Units, notified,
	)
}

func renderRequestDecision(request *entity.BloodRequest, decision entity.Status, reason string) string {
	if decision == entity.StatusApproved {
		return fmt.Sprintf(
			"Your %s blood request (%d ml) has been approved. Please contact the blood bank to arrange collection.",
			request.BloodGroup, request.Units,
		)
	}

	msg := fmt.Sprintf(
		"Your %s blood request (%d ml) could not be fulfilled at this time.",
		request.BloodGroup, request.Units,
	)
	if reason != "" {
		msg += " Reason: " + reason
	}

	return msg
}

func renderDonationDecision(donation *entity.BloodDonation, decision entity.Status, reason string) string {
	if decision == entity.StatusApproved {
		return fmt.Sprintf(
			"Thank you! Your %s blood donation (%d ml) has been accepted and added to the bank.",
			donation.BloodGroup, donation.Units,
		)
	}

	msg := fmt.Sprintf(
		"Your %s blood donation (%d ml) could not be accepted.",
		donation.BloodGroup, donation.Units,
	)
	if reason != "" {
		msg += " Reason: " + reason
	}

	return msg
}

// truncate trims a rendered message to the configured channel limit in
// bytes, backing off to the previous rune boundary so a multibyte name is
// never cut mid-rune. A limit of zero disables trimming.
func truncate(message string, limit int) string {
	if limit <= 0 || len(message) <= limit {
		return message
	}

	for limit > 0 && !utf8.RuneStart(message[limit]) {
		limit--
	}

	return message[:limit]
}
