// Package appconfig supplies dirwalk's built-in ignore defaults: the
// directories almost nobody wants classified one entry at a time (editor
// state, build output, language-specific caches).
package appconfig

// DefaultIgnoreLines returns gitignore-style lines for directories dirwalk
// treats as ignored by default, fed into the excludes stack ahead of the
// worktree's own .gitignore so a project's real rules (including a "!"
// negation) can still override any of them.
func DefaultIgnoreLines() []string {
	names := []string{
		// IDE/editor state
		".idea", ".vscode", ".vs", ".project", ".settings", ".classpath", ".metals", ".bsp", ".bloop",
		// Build artifacts & dependencies
		"node_modules", "vendor", "target", "build", "dist", "out", "bin", "obj",
		// Python
		"__pycache__", ".pytest_cache", ".mypy_cache", ".tox", ".venv", "venv", "ENV", "env",
		// JS framework build output
		".next", ".nuxt", ".svelte-kit", ".output",
		// Serverless frameworks
		".wrangler", ".serverless",
		// Terraform
		".terraform",
		// Generic caching
		".cache",
		// Jupyter
		".ipynb_checkpoints",
		// Elixir / Erlang
		"_build", "deps", "_rel", "ebin",
	}

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, name+"/")
	}
	return lines
}
