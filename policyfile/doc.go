// Package policyfile loads optimization policies from configuration
// files.
//
// YAML, TOML, and JSON files are supported, selected by extension. Loaded
// values are merged over the policy defaults and validated, so a file only
// needs the fields it changes:
//
//	policy, err := policyfile.Load("policy.yaml")
//
// Watch re-loads a policy file whenever it changes on disk:
//
//	w, err := policyfile.Watch(ctx, "policy.yaml", func(p optimize.Policy) {
//	    current.Store(&p)
//	})
//
// Schema exports a JSON schema of the policy document for editor
// completion and CI validation.
package policyfile
