package mailer

import "fmt"

// commentPreviewLen caps how much of the comment body appears in the email.
const commentPreviewLen = 100

// CommentNotificationInput carries the context of a freshly created comment
// for the owner notification email.
type CommentNotificationInput struct {
	AppURL         string
	ForumID        string
	ForumTitle     string
	CommentAuthor  string
	CommentContent string
	RecipientEmail string
}

// CommentNotification builds the "someone commented on your forum" email.
func CommentNotification(in CommentNotificationInput) Email {
	subject := fmt.Sprintf("New comment on your forum: %s", in.ForumTitle)

	preview := in.CommentContent
	if len(preview) > commentPreviewLen {
		preview = preview[:commentPreviewLen] + "..."
	}

	forumURL := fmt.Sprintf("%s/forums/%s", in.AppURL, in.ForumID)

	text := fmt.Sprintf(`%s commented on your forum "%s":

"%s"

View the full comment here: %s

You're receiving this email because you created this forum. You can manage your notification settings in your profile.
`, in.CommentAuthor, in.ForumTitle, preview, forumURL)

	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">New Comment on Your Forum</h2>
  <p><strong>%s</strong> commented on your forum "<strong>%s</strong>":</p>
  <div style="background-color: #f5f5f5; padding: 15px; border-radius: 5px; margin: 15px 0;">
    <p style="margin: 0; color: #555;">"%s"</p>
  </div>
  <p>
    <a href="%s" style="background-color: #0070f3; color: white; padding: 10px 15px; text-decoration: none; border-radius: 5px; display: inline-block;">View Full Comment</a>
  </p>
  <p style="color: #777; font-size: 0.9em; margin-top: 30px; border-top: 1px solid #eee; padding-top: 15px;">
    You're receiving this email because you created this forum.
    You can manage your notification settings in your profile.
  </p>
</div>`, in.CommentAuthor, in.ForumTitle, preview, forumURL)

	return Email{
		To:      in.RecipientEmail,
		Subject: subject,
		Text:    text,
		HTML:    html,
	}
}
