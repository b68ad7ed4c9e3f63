package views

import (
	"bytes"
	"html"
	"strconv"

	"github.com/a-h/templ"

	s11a "github.com/funsaized/s11a"
)

func adminPage(title string, body func(*bytes.Buffer)) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
		buf.WriteString("<meta charset=\"utf-8\"/>")
		buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>")
		buf.WriteString("<meta name=\"robots\" content=\"noindex\"/>")
		buf.WriteString("<title>" + html.EscapeString(title) + "</title>")
		buf.WriteString("<link rel=\"stylesheet\" href=\"/public/site.css\"/>")
		buf.WriteString("</head><body class=\"admin\"><main>")
		body(buf)
		buf.WriteString("</main></body></html>")
	})
}

func csrfField(buf *bytes.Buffer, token string) {
	buf.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + html.EscapeString(token) + "\"/>")
}

func adminLogin(showError bool, csrfToken string) templ.Component {
	return adminPage("Admin login", func(buf *bytes.Buffer) {
		buf.WriteString("<h1>Admin</h1>")
		if showError {
			buf.WriteString("<p class=\"error\">Wrong password.</p>")
		}
		buf.WriteString("<form method=\"post\" action=\"/admin/login/\">")
		csrfField(buf, csrfToken)
		buf.WriteString("<input type=\"password\" name=\"password\" placeholder=\"Password\" autofocus/>")
		buf.WriteString("<button type=\"submit\">Log in</button>")
		buf.WriteString("</form>")
	})
}

func adminDashboard(posts []s11a.Post, message string, csrfToken string) templ.Component {
	return adminPage("Dashboard", func(buf *bytes.Buffer) {
		buf.WriteString("<h1>Posts</h1>")
		if message != "" {
			buf.WriteString("<p class=\"message\">" + html.EscapeString(message) + "</p>")
		}
		buf.WriteString("<p><a href=\"/admin/images/\">Images</a></p>")
		buf.WriteString("<form method=\"post\" action=\"/admin/logout/\">")
		csrfField(buf, csrfToken)
		buf.WriteString("<button type=\"submit\">Log out</button></form>")
		buf.WriteString("<table><thead><tr><th>Title</th><th>Date</th><th>Category</th><th>Status</th></tr></thead><tbody>")
		for _, p := range posts {
			status := "draft"
			if p.Published {
				status = "published"
			}
			buf.WriteString("<tr>")
			buf.WriteString("<td><a href=\"/admin/post/" + s11a.PathEscape(p.Slug) + "/\">" + html.EscapeString(p.Title) + "</a></td>")
			buf.WriteString("<td>" + html.EscapeString(p.Date) + "</td>")
			buf.WriteString("<td>" + html.EscapeString(p.Category) + "</td>")
			buf.WriteString("<td>" + status + "</td>")
			buf.WriteString("</tr>")
		}
		buf.WriteString("</tbody></table>")
		writePostForm(buf, s11a.Post{}, csrfToken)
	})
}

func adminForm(post s11a.Post, csrfToken string) templ.Component {
	return adminPage("Edit: "+post.Title, func(buf *bytes.Buffer) {
		buf.WriteString("<h1>Edit post</h1>")
		buf.WriteString("<p><a href=\"/admin/\">Back</a></p>")
		writePostForm(buf, post, csrfToken)
	})
}

func writePostForm(buf *bytes.Buffer, post s11a.Post, csrfToken string) {
	buf.WriteString("<form method=\"post\" action=\"/admin/save/\" class=\"post-form\">")
	csrfField(buf, csrfToken)
	textField(buf, "title", "Title", post.Title)
	textField(buf, "slug", "Slug", post.Slug)
	textField(buf, "date", "Date (YYYY-MM-DD)", post.Date)
	textField(buf, "tags", "Tags (comma-separated)", s11a.JoinTags(post.Tags))
	textField(buf, "category", "Category", post.Category)
	textField(buf, "excerpt", "Excerpt", post.Excerpt)
	textField(buf, "thumbnail", "Thumbnail URL", post.Thumbnail)
	buf.WriteString("<textarea name=\"content\" rows=\"20\">" + html.EscapeString(post.Content) + "</textarea>")
	checked := ""
	if post.Published {
		checked = " checked"
	}
	buf.WriteString("<label><input type=\"checkbox\" name=\"published\" value=\"1\"" + checked + "/> Published</label>")
	buf.WriteString("<button type=\"submit\">Save</button>")
	buf.WriteString("</form>")
}

func textField(buf *bytes.Buffer, name, label, value string) {
	buf.WriteString("<label>" + html.EscapeString(label))
	buf.WriteString("<input type=\"text\" name=\"" + name + "\" value=\"" + html.EscapeString(value) + "\"/>")
	buf.WriteString("</label>")
}

func adminImages(images []s11a.Image, csrfToken string) templ.Component {
	return adminPage("Images", func(buf *bytes.Buffer) {
		buf.WriteString("<h1>Images</h1>")
		buf.WriteString("<p><a href=\"/admin/\">Back</a></p>")
		buf.WriteString("<form method=\"post\" action=\"/admin/images/upload/\" enctype=\"multipart/form-data\">")
		csrfField(buf, csrfToken)
		buf.WriteString("<input type=\"file\" name=\"image\" accept=\"image/*\"/>")
		buf.WriteString("<button type=\"submit\">Upload</button>")
		buf.WriteString("</form>")
		buf.WriteString("<ul class=\"images\">")
		for _, img := range images {
			src := "/public/uploads/" + s11a.PathEscape(img.Filename)
			buf.WriteString("<li>")
			buf.WriteString("<img src=\"" + src + "\" alt=\"" + html.EscapeString(img.OriginalName) + "\" loading=\"lazy\"/>")
			buf.WriteString("<code>" + html.EscapeString(img.Filename) + "</code> ")
			buf.WriteString(strconv.Itoa(img.Width) + "&times;" + strconv.Itoa(img.Height))
			buf.WriteString("</li>")
		}
		buf.WriteString("</ul>")
	})
}
