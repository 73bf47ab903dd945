package web

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotice_Message(t *testing.T) {
	tests := []struct {
		notice Notice
		want   string
	}{
		{Notice{Code: NoticeMissing, Subject: "Rust"}, "The Wiki doesn't have an article titled Rust"},
		{Notice{Code: NoticeNoResults}, "The Wiki doesn't have any responsive articles"},
		{Notice{Code: NoticeEditSaved, Subject: "ignored"}, "Edit saved"},
		{Notice{Code: NoticeArticleSaved}, "Article saved"},
		{Notice{Code: NoticeDuplicate}, "That article exists and can't be added"},
		{Notice{Code: "bogus"}, ""},
		{Notice{}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.notice.Message(), "code %q", tt.notice.Code)
	}
}

func TestNotice_AppendTo(t *testing.T) {
	assert.Equal(t, "/", Notice{}.AppendTo("/"))
	assert.Equal(t, "/?notice=no_results", Notice{Code: NoticeNoResults}.AppendTo("/"))
	assert.Equal(t, "/?notice=missing&subject=A+B", Notice{Code: NoticeMissing, Subject: "A B"}.AppendTo("/"))
	assert.Equal(t, "/wiki/Hello%20World?notice=edit_saved",
		Notice{Code: NoticeEditSaved}.AppendTo(articleURL("Hello World")))
}

func TestNoticeFromQuery_RoundTrip(t *testing.T) {
	n := Notice{Code: NoticeMissing, Subject: "C#"}
	u, err := url.Parse(n.AppendTo("/"))
	assert.NoError(t, err)
	assert.Equal(t, n, noticeFromQuery(u.Query()))
}
