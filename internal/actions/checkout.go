package actions

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	branchkiterrors "branchkit.dev/branchkit/internal/errors"
	"branchkit.dev/branchkit/internal/git"
	"branchkit.dev/branchkit/internal/output"
	"branchkit.dev/branchkit/internal/runtime"
	"branchkit.dev/branchkit/internal/tui"
	"branchkit.dev/branchkit/internal/utils"
)

const (
	checkoutPrompt = "Select a branch to check out"
	quitOption     = "Quit"
)

// CheckoutOptions contains options for the interactive branch selector
type CheckoutOptions struct {
	// SkipCleanup disables prune and gone-branch deletion on entry.
	SkipCleanup bool

	// Force deletes gone branches without asking.
	Force bool

	// TUI uses the full-screen filterable picker instead of the numbered menu.
	TUI bool

	// MenuWidth truncates menu items; overrides the configured value.
	MenuWidth string
}

// CheckoutAction runs the interactive branch selector: synchronize the
// canonical branch, prune and clean up, then offer every local and remote
// branch in a numbered menu. Invalid input re-displays the same list without
// re-running the pull and prune; quitting performs no mutation.
func CheckoutAction(rctx *runtime.Context, opts CheckoutOptions) error {
	widthValue := opts.MenuWidth
	if widthValue == "" {
		widthValue = rctx.Config.MenuWidth
	}
	width, err := output.ParseMenuWidth(widthValue)
	if err != nil {
		return err
	}

	ctx := context.Background()
	reader := bufio.NewReader(rctx.In)

	var branches []string
	skipRefresh := false
	for {
		if !skipRefresh {
			if err := refreshBranchState(rctx, opts); err != nil {
				return err
			}
			branches, err = git.ListBranchOptions(ctx)
			if err != nil {
				return err
			}
			skipRefresh = true
		}

		if opts.TUI {
			selected, err := tui.SelectBranch(checkoutPrompt, branches)
			if errors.Is(err, tui.ErrCancelled) {
				return nil
			}
			if err != nil {
				return err
			}
			return checkoutSelection(rctx, ctx, selected)
		}

		items := make([]string, 0, len(branches)+2)
		items = append(items, checkoutPrompt)
		items = append(items, branches...)
		items = append(items, quitOption)
		if err := output.RenderMenu(rctx.Splog.Out(), items, width); err != nil {
			return err
		}

		line, readErr := reader.ReadString('\n')
		input := strings.TrimSpace(line)
		if input == "" && readErr != nil {
			// Input stream closed, same as quitting.
			return nil
		}

		if strings.HasPrefix(strings.ToLower(input), "q") {
			return nil
		}

		if n, convErr := strconv.Atoi(input); convErr == nil {
			if n == len(branches)+1 {
				return nil
			}
			if n >= 1 && n <= len(branches) {
				return checkoutSelection(rctx, ctx, branches[n-1])
			}
		}

		rctx.Splog.Error("unrecognized option: %s", input)
		if readErr != nil {
			return fmt.Errorf("%w: %s", branchkiterrors.ErrUnrecognizedOption, input)
		}
	}
}

// refreshBranchState is the selector's entry work: synchronize the canonical
// branch, then prune stale remote-tracking refs and delete local branches
// whose upstream is gone unless cleanup is skipped. A pull failure aborts the
// interaction.
func refreshBranchState(rctx *runtime.Context, opts CheckoutOptions) error {
	result, err := PullAction(rctx)
	if err != nil {
		return err
	}
	rctx.Splog.Info("Synchronized %s.", output.ColorBranchName(result.Branch, false))

	if !opts.SkipCleanup {
		ctx := context.Background()
		git.PruneRemote(ctx, git.GetRemote())
		cleanupGoneBranches(rctx, opts.Force)
	}
	return nil
}

// cleanupGoneBranches deletes local branches whose upstream no longer
// exists. Best-effort: protected branches are kept, the user is asked first
// when interactive, and deletion failures (unmerged work) are swallowed.
func cleanupGoneBranches(rctx *runtime.Context, force bool) {
	ctx := context.Background()
	gone, err := git.GoneBranches(ctx)
	if err != nil {
		rctx.Splog.Warn("could not list branches with gone upstreams: %v", err)
		return
	}

	for _, name := range gone {
		if rctx.Config.IsProtected(name) {
			continue
		}

		if !force && utils.IsInteractive() {
			confirmed := false
			prompt := &survey.Confirm{
				Message: fmt.Sprintf("Delete %s (upstream is gone)?", name),
				Default: true,
			}
			if err := survey.AskOne(prompt, &confirmed); err != nil || !confirmed {
				continue
			}
		}

		if err := git.DeleteBranch(ctx, name); err != nil {
			continue
		}
		rctx.Splog.Info("Deleted branch %s.", output.ColorBranchName(name, false))
	}
}

func checkoutSelection(rctx *runtime.Context, ctx context.Context, branch string) error {
	current, err := git.GetCurrentBranch()
	if err == nil && branch == current {
		rctx.Splog.Info("Already on %s.", output.ColorBranchName(branch, true))
		return nil
	}

	if err := git.CheckoutBranch(ctx, branch); err != nil {
		return err
	}
	rctx.Splog.Info("Checked out %s.", output.ColorBranchName(branch, false))
	return nil
}
