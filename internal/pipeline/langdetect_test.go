package pipeline

import "testing"

func TestDetectCodeLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		// Extension mentions
		{
			name:    "ts extension",
			content: "see src/app.ts for details",
			want:    LangTypeScript,
		},
		{
			name:    "tsx extension case-insensitive",
			content: "Edit App.TSX now",
			want:    LangTypeScript,
		},
		{
			name:    "jsx extension at end of text",
			content: "open components/Button.jsx",
			want:    LangTypeScript,
		},
		{
			name:    "py extension",
			content: "run scripts/build.py first",
			want:    LangPython,
		},
		{
			name:    "sh extension",
			content: "chmod +x deploy.sh",
			want:    LangBash,
		},
		// Syntax rules
		{
			name:    "function declaration",
			content: "function foo() {\n  return 1;\n}",
			want:    LangTypeScript,
		},
		{
			name:    "export statement",
			content: "export const x = 1;",
			want:    LangTypeScript,
		},
		{
			name:    "interface declaration",
			content: "interface Shape {\n  area(): number;\n}",
			want:    LangTypeScript,
		},
		{
			name:    "from-import is typescript",
			content: "import { useState } from 'react';",
			want:    LangTypeScript,
		},
		{
			name:    "bare import is python",
			content: "import os\nprint(os.getcwd())",
			want:    LangPython,
		},
		{
			name:    "def statement",
			content: "def handler(event):\n    return event",
			want:    LangPython,
		},
		{
			name:    "class statement",
			content: "class Widget:\n    pass",
			want:    LangPython,
		},
		{
			name:    "npm command",
			content: "npm install --save-dev typescript",
			want:    LangBash,
		},
		{
			name:    "ls command",
			content: "ls -la",
			want:    LangBash,
		},
		{
			name:    "mkdir command",
			content: "mkdir -p build/out",
			want:    LangBash,
		},
		// Priority
		{
			name:    "web-stack rule beats python rule",
			content: "import os\nfunction foo() {",
			want:    LangTypeScript,
		},
		{
			name:    "ts extension beats python syntax",
			content: "def setup():\n    copy('main.ts ')",
			want:    LangTypeScript,
		},
		{
			name:    "python syntax beats shell tokens",
			content: "import subprocess\nsubprocess.run(['ls', '-la'])",
			want:    LangPython,
		},
		// Unknown
		{
			name:    "plain prose",
			content: "nothing resembling source here",
			want:    "",
		},
		{
			name:    "empty content",
			content: "",
			want:    "",
		},
		{
			name:    "bare assignment",
			content: "x = 1",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DetectCodeLanguage(tt.content); got != tt.want {
				t.Errorf("DetectCodeLanguage(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}
