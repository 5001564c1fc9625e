package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/Robustic/tmc-langs-go/internal/filelock"
	"github.com/Robustic/tmc-langs-go/internal/merge"
	"github.com/Robustic/tmc-langs-go/internal/messages"
	"github.com/Robustic/tmc-langs-go/internal/policy"
)

func newMergeCmd() *cobra.Command {
	var language string
	var dryRun bool
	var diffLines int

	cmd := &cobra.Command{
		Use:   messages.MergeUse,
		Short: messages.MergeShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := homedir.Expand(args[0])
			if err != nil {
				return err
			}
			target, err := homedir.Expand(args[1])
			if err != nil {
				return err
			}
			pol, err := policyForLanguage(language, target)
			if err != nil {
				return err
			}
			pol, err = policy.LoadWithProjectFile(pol)
			if err != nil {
				return err
			}

			if dryRun {
				return runMergeDryRun(cmd, source, target, pol, diffLines)
			}

			result, err := merge.Merge(source, target, pol)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, rel := range result.Preserved {
				_, _ = fmt.Fprintf(out, messages.MergePreservedEntryFmt, rel)
			}
			_, _ = color.New(color.FgGreen).Fprintf(out, messages.MergeSummaryFmt, result.Applied, len(result.Preserved))
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "ant", messages.MergeFlagLanguage)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.MergeFlagDryRun)
	cmd.Flags().IntVar(&diffLines, "diff-lines", merge.DefaultDiffMaxLines, messages.MergeFlagDiffLines)
	return cmd
}

// runMergeDryRun previews the merge under the workspace lock without
// modifying anything.
func runMergeDryRun(cmd *cobra.Command, source, target string, pol policy.StudentFilePolicy, diffLines int) error {
	var previews []merge.DiffPreview
	err := filelock.WithLock(merge.LockPath(target), func() error {
		plan, err := merge.BuildPlan(source, target, pol)
		if err != nil {
			return err
		}
		previews, err = merge.BuildDiffPreviews(plan, diffLines)
		return err
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(previews) == 0 {
		_, _ = fmt.Fprintln(out, messages.MergeDryRunNoChanges)
		return nil
	}
	_, _ = color.New(color.FgYellow).Fprintln(out, messages.MergeDryRunHeader)
	for _, preview := range previews {
		_, _ = fmt.Fprint(out, preview.UnifiedDiff)
		if preview.Truncated {
			_, _ = fmt.Fprintln(out, messages.MergeDryRunTruncated)
		}
	}
	return nil
}

// policyForLanguage selects the student file policy for the active
// language plugin, anchored at the workspace root.
func policyForLanguage(language, workspace string) (policy.StudentFilePolicy, error) {
	switch language {
	case "ant":
		return policy.NewAntPolicy(workspace), nil
	case "make":
		return policy.NewMakePolicy(workspace), nil
	default:
		return nil, fmt.Errorf(messages.UnsupportedLanguageFmt, language)
	}
}
