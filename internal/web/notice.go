// ABOUTME: Short-lived notices carried from an operation to the next rendered page
// ABOUTME: Encoded as query parameters on redirect targets, rendered from a fixed message table

package web

import (
	"fmt"
	"net/url"
)

// NoticeCode identifies a notice message.
type NoticeCode string

const (
	NoticeMissing      NoticeCode = "missing"
	NoticeNoResults    NoticeCode = "no_results"
	NoticeEditSaved    NoticeCode = "edit_saved"
	NoticeArticleSaved NoticeCode = "article_saved"
	NoticeDuplicate    NoticeCode = "duplicate"
	NoticeEmptyWiki    NoticeCode = "empty_wiki"
	NoticeInvalidTitle NoticeCode = "invalid_title"
	NoticeEmptyBody    NoticeCode = "empty_body"
)

// Query parameter names used to carry a notice across a redirect
const (
	noticeParam  = "notice"
	subjectParam = "subject"
)

// noticeMessages maps codes to display text. A %s verb is filled with Notice.Subject.
var noticeMessages = map[NoticeCode]string{
	NoticeMissing:      "The Wiki doesn't have an article titled %s",
	NoticeNoResults:    "The Wiki doesn't have any responsive articles",
	NoticeEditSaved:    "Edit saved",
	NoticeArticleSaved: "Article saved",
	NoticeDuplicate:    "That article exists and can't be added",
	NoticeEmptyWiki:    "The Wiki doesn't have any articles yet",
	NoticeInvalidTitle: "That title can't be used",
	NoticeEmptyBody:    "An article can't be empty",
}

// Notice is a transient message for the user.
type Notice struct {
	Code    NoticeCode
	Subject string // article name the message refers to, if any
}

// Message returns the display text, or "" for an unknown or zero notice.
func (n Notice) Message() string {
	format, ok := noticeMessages[n.Code]
	if !ok {
		return ""
	}
	if n.Code == NoticeMissing {
		return fmt.Sprintf(format, n.Subject)
	}
	return format
}

// AppendTo returns target with the notice added to its query string.
func (n Notice) AppendTo(target string) string {
	if n.Code == "" {
		return target
	}
	u, err := url.Parse(target)
	if err != nil {
		return target
	}
	q := u.Query()
	q.Set(noticeParam, string(n.Code))
	if n.Subject != "" {
		q.Set(subjectParam, n.Subject)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// noticeFromQuery decodes a notice carried on a request URL.
func noticeFromQuery(q url.Values) Notice {
	return Notice{
		Code:    NoticeCode(q.Get(noticeParam)),
		Subject: q.Get(subjectParam),
	}
}
