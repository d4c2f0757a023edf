package email

import (
	"fmt"
	"os"
	"strings"

	"Backend-VolunteerHub/src/models"
)

func activityURL(activityID string) string {
	base := strings.TrimRight(os.Getenv("APP_BASE_URL"), "/")
	if base == "" {
		base = "http://localhost:9000"
	}
	return base + "/volunteer/activities/" + activityID
}

func publishedBody(a *models.Activity, match models.MatchResult) string {
	urgent := ""
	if a.IsUrgent {
		urgent = "<p><strong>This activity is marked URGENT.</strong></p>"
	}
	return fmt.Sprintf(`
		<h2>New volunteer activity: %s</h2>
		%s
		<p>%s</p>
		<p>Date: %s, %s–%s</p>
		<p>Needed skills: %s<br>Needed services: %s</p>
		<p>Your compatibility score: <strong>%d%%</strong></p>
		<p><a href="%s">View and register</a></p>`,
		a.Title, urgent, a.Description,
		a.Date, a.TimeFrom, a.TimeTo,
		strings.Join(a.RequiredSkills, ", "), strings.Join(a.RequiredServices, ", "),
		match.TotalScore, activityURL(a.ID.Hex()))
}

func cancelledBody(a *models.Activity) string {
	return fmt.Sprintf(`
		<h2>Activity cancelled: %s</h2>
		<p>The activity scheduled for %s (%s–%s) has been cancelled.
		We are sorry for the inconvenience.</p>`,
		a.Title, a.Date, a.TimeFrom, a.TimeTo)
}

func registrationBody(a *models.Activity, left bool) string {
	if left {
		return fmt.Sprintf(`
			<h2>Registration cancelled</h2>
			<p>You are no longer registered for <strong>%s</strong> on %s.</p>`,
			a.Title, a.Date)
	}
	return fmt.Sprintf(`
		<h2>You are registered</h2>
		<p>See you at <strong>%s</strong> on %s, %s–%s.
		Please check in with the staff QR code at the venue.</p>
		<p><a href="%s">Activity details</a></p>`,
		a.Title, a.Date, a.TimeFrom, a.TimeTo, activityURL(a.ID.Hex()))
}
