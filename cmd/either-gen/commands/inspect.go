package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"either-generator/internal/analyze"
	"either-generator/internal/config"
	"either-generator/internal/diagnostic"
	"either-generator/internal/emit"
	"either-generator/internal/engine"
	"either-generator/internal/grammar"
	"either-generator/internal/resolve"
)

// inspectReport is the YAML document printed by inspect.
type inspectReport struct {
	File      string           `yaml:"file"`
	Templates []templateReport `yaml:"templates"`
}

type templateReport struct {
	Name        string             `yaml:"name"`
	Mode        string             `yaml:"mode,omitempty"`
	Positional  bool               `yaml:"positional,omitempty"`
	Settings    *grammar.Settings  `yaml:"settings,omitempty"`
	Choices     []choiceReport     `yaml:"choices,omitempty"`
	Params      []string           `yaml:"params,omitempty"`
	Derivations []derivationReport `yaml:"derivations,omitempty"`
	Diagnostics []string           `yaml:"diagnostics,omitempty"`
}

type choiceReport struct {
	Field      string   `yaml:"field"`
	Candidates []string `yaml:"candidates"`
}

type derivationReport struct {
	Name   string          `yaml:"name"`
	Fields []bindingReport `yaml:"fields"`
}

type bindingReport struct {
	Field   string `yaml:"field"`
	Type    string `yaml:"type"`
	Default bool   `yaml:"default,omitempty"`
}

func newInspectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the expansion plan of a template file as YAML",
		Long: `Print, for every template of a template file, its choice fields with their
candidates, the type parameters synthesized in alias mode and the resolved
type of every choice field in each derivation. Nothing is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tf, err := a.analyzer().ParseFile(args[0])
			if err != nil {
				return err
			}

			doc := inspect(engine.New(emit.Options{PositionalPrefix: a.cfg.PositionalPrefix}), tf)

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)

			if err := enc.Encode(doc); err != nil {
				return errors.Wrap(err, "failed to encode report")
			}

			return enc.Close()
		},
	}

	cmd.Flags().String("tag", config.DefaultBuildTag, "Build tag marking template files")
	cmd.Flags().String("prefix", config.DefaultPositionalPrefix, "Name prefix of positional fields")

	return cmd
}

func inspect(e *engine.Engine, tf *analyze.TemplateFile) *inspectReport {
	doc := &inspectReport{File: tf.Path}

	for _, t := range tf.Templates {
		def := t.Def
		tr := templateReport{Name: def.Name, Positional: def.Positional}

		var diags diagnostic.Diagnostics

		plan := e.Plan(def, tf.Fset, &diags)
		if plan != nil {
			tr.Mode = "alias"
			if plan.Input.Settings.GenerateStructs {
				tr.Mode = "struct"
			}

			tr.Settings = &plan.Input.Settings

			for _, c := range plan.Choices {
				cr := choiceReport{Field: c.Key.String()}
				for _, cand := range c.Candidates {
					cr.Candidates = append(cr.Candidates, cand.Text)
				}

				tr.Choices = append(tr.Choices, cr)
			}

			for _, p := range plan.Params {
				tr.Params = append(tr.Params, p.Name+" "+p.Constraint)
			}

			for _, d := range plan.Input.Derivations {
				r, err := resolve.Resolve(def, plan.Choices, d)
				if err != nil {
					tr.Diagnostics = append(tr.Diagnostics, err.Error())
					break
				}

				dr := derivationReport{Name: r.Name}
				for _, f := range r.Fields {
					dr.Fields = append(dr.Fields, bindingReport{
						Field:   f.Key.String(),
						Type:    f.Type.Text,
						Default: f.Default,
					})
				}

				tr.Derivations = append(tr.Derivations, dr)
			}
		}

		for _, d := range diags.All() {
			tr.Diagnostics = append(tr.Diagnostics, d.String())
		}

		doc.Templates = append(doc.Templates, tr)
	}

	return doc
}
