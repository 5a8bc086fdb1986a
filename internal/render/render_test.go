package render

import (
	"errors"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		content string
		vars    map[string]string
		want    string
	}{
		{
			name:    "simple substitution",
			content: `title: "{{title}}"`,
			vars:    map[string]string{"title": `Hello \"World\"`},
			want:    `title: "Hello \"World\""`,
		},
		{
			name:    "dotted names",
			content: "{{who.name}} <{{who.url}}>",
			vars:    map[string]string{"who.name": "Jo", "who.url": "http://jo"},
			want:    "Jo <http://jo>",
		},
		{
			name:    "repeated placeholder",
			content: "{{a}}-{{a}}",
			vars:    map[string]string{"a": "x"},
			want:    "x-x",
		},
		{
			name:    "values are not rescanned",
			content: "{{content}}",
			vars:    map[string]string{"content": "literal {{title}} in a post"},
			want:    "literal {{title}} in a post",
		},
		{
			name:    "liquid tags left alone",
			content: "{{ page.title }} {% include {{includeComments}} %}",
			vars:    map[string]string{"includeComments": "comments-42.html"},
			want:    "{{ page.title }} {% include comments-42.html %}",
		},
		{
			name:    "empty value",
			content: "categories:{{categories}}",
			vars:    map[string]string{"categories": ""},
			want:    "categories:",
		},
		{
			name:    "extra vars ignored",
			content: "plain",
			vars:    map[string]string{"unused": "x"},
			want:    "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(&Template{Name: "t", Content: tt.content}, tt.vars)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_MissingValue(t *testing.T) {
	tmpl := &Template{Name: "post", Content: "{{title}} {{author}} {{author}} {{slug}}"}

	got, err := Render(tmpl, map[string]string{"title": "x"})
	if err == nil {
		t.Fatal("Render() expected error")
	}
	if got != "" {
		t.Errorf("Render() = %q, want empty output on error", got)
	}

	var rerr *Error
	if !errors.As(err, &rerr) {
		t.Fatalf("error = %T, want *Error", err)
	}
	if rerr.Template != "post" {
		t.Errorf("Template = %q, want post", rerr.Template)
	}
	if strings.Join(rerr.Missing, ",") != "author,slug" {
		t.Errorf("Missing = %v, want [author slug]", rerr.Missing)
	}
	if !strings.Contains(err.Error(), "author, slug") {
		t.Errorf("Error() = %q, want missing names", err.Error())
	}
}

func TestRenderAll(t *testing.T) {
	tmpl := &Template{Name: "comment", Content: "[{{comment_id}}:{{content}}]\n"}

	got, err := RenderAll(tmpl, []map[string]string{
		{"comment_id": "1", "content": "first"},
		{"comment_id": "2", "content": "second"},
	})
	if err != nil {
		t.Fatalf("RenderAll() error = %v", err)
	}
	if want := "[1:first]\n[2:second]\n"; got != want {
		t.Errorf("RenderAll() = %q, want %q", got, want)
	}
}

func TestRenderAll_Empty(t *testing.T) {
	got, err := RenderAll(&Template{Content: "{{x}}"}, nil)
	if err != nil {
		t.Fatalf("RenderAll() error = %v", err)
	}
	if got != "" {
		t.Errorf("RenderAll() = %q, want empty", got)
	}
}

func TestRenderAll_StopsOnError(t *testing.T) {
	tmpl := &Template{Name: "comment", Content: "{{content}}"}

	_, err := RenderAll(tmpl, []map[string]string{
		{"content": "ok"},
		{},
	})
	var rerr *Error
	if !errors.As(err, &rerr) {
		t.Fatalf("RenderAll() error = %v, want *Error", err)
	}
}
