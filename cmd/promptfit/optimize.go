package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/promptfit/promptfit/assemble"
	"github.com/promptfit/promptfit/model"
	"github.com/promptfit/promptfit/optimize"
	"github.com/promptfit/promptfit/policyfile"
	"github.com/promptfit/promptfit/tokens"
)

// request is the YAML document accepted by `promptfit optimize`.
type request struct {
	Model      string                    `yaml:"model"`
	Components optimize.PromptComponents `yaml:",inline"`
}

func newOptimizeCmd() *cobra.Command {
	var (
		policyFile string
		modelFlag  string
		render     bool
	)

	cmd := &cobra.Command{
		Use:   "optimize <request.yaml> [more requests...]",
		Short: "Fit a prompt into a model's context window",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if render && len(args) > 1 {
				return fmt.Errorf("--render takes a single request file")
			}
			return runOptimize(args, policyFile, modelFlag, render)
		},
	}

	cmd.Flags().StringVar(&policyFile, "policy", "", "policy file (YAML/TOML/JSON; default: built-in defaults plus PROMPTFIT_* env)")
	cmd.Flags().StringVarP(&modelFlag, "model", "m", "", "override the request's model identifier")
	cmd.Flags().BoolVar(&render, "render", false, "print the assembled prompt instead of the report")

	return cmd
}

func runOptimize(requestFiles []string, policyFile, modelFlag string, render bool) error {
	policy := optimize.DefaultPolicy()
	if policyFile != "" {
		var err error
		policy, err = policyfile.Load(policyFile)
		if err != nil {
			return err
		}
	}
	policy.LoadFromEnv()

	opt := optimize.New(optimize.WithCounterCache(tokens.NewCache()))
	tracker := model.NewSavingsTracker()

	for _, path := range requestFiles {
		result, modelID, err := optimizeFile(opt, path, policy, modelFlag)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		tracker.Record(model.Normalize(modelID), result.OriginalEstimate.Total, result.OptimizedEstimate.Total)

		for _, w := range result.Warnings {
			log.WithField("model", modelID).Warn(w)
		}

		if render {
			text, err := assemble.New().Render(result)
			if err != nil {
				return err
			}
			fmt.Print(text)
			return nil
		}

		log.WithFields(logrus.Fields{
			"model":        modelID,
			"tokens_saved": result.TokensSaved,
			"utilization":  fmt.Sprintf("%.0f%%", result.OptimizedEstimate.Utilization()*100),
		}).Info(result.Strategy)

		out, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		fmt.Print(string(out))
	}

	if total := tracker.Total(); total.Calls > 1 {
		log.WithFields(logrus.Fields{
			"requests":     total.Calls,
			"tokens_saved": total.Saved(),
		}).Info("totals")
	}
	return nil
}

func optimizeFile(opt *optimize.Optimizer, path string, policy optimize.Policy, modelFlag string) (*optimize.OptimizedPrompt, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read request: %w", err)
	}
	var req request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, "", fmt.Errorf("parse request: %w", err)
	}

	modelID := req.Model
	if modelFlag != "" {
		modelID = modelFlag
	}
	if modelID == "" {
		return nil, "", fmt.Errorf("no model: set `model:` in the request or pass --model")
	}

	result, err := opt.Optimize(req.Components, policy, modelID)
	if err != nil {
		return nil, "", err
	}
	return result, modelID, nil
}
