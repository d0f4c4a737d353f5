package cmd

import (
	"fmt"
	"os"

	"github.com/ohler55/ojg/oj"
	"github.com/pagewright/canvas/internal/doc"
	"github.com/pagewright/canvas/internal/editor"
	"github.com/pagewright/canvas/internal/tree"
	"github.com/spf13/cobra"
)

var applyOut string

func init() {
	applyCmd.Flags().StringVarP(&applyOut, "out", "o", "", "Write the resulting document here (default: stdout)")
	rootCmd.AddCommand(applyCmd)
}

// action is one scripted editor step. Index is a pointer so that "absent"
// (append) and "index 0" stay distinct in JSON.
type action struct {
	Action string         `json:"action"`
	Type   string         `json:"type,omitempty"`
	ID     string         `json:"id,omitempty"`
	Parent string         `json:"parent,omitempty"`
	Index  *int           `json:"index,omitempty"`
	Props  map[string]any `json:"props,omitempty"`
}

func (a action) index() int {
	if a.Index == nil {
		return -1
	}
	return *a.Index
}

var applyCmd = &cobra.Command{
	Use:   "apply [page.json] [script.json]",
	Short: "Replay a script of editor actions against a page document",
	Long: `Apply runs each action of a JSON script through the editing engine,
in order, exactly as interactive editing would: one history entry per
completed action, stale targets silently ignored. Supported actions:
insert, remove, move, update, duplicate, copy, cut, paste, select, undo,
redo.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, cfg, err := catalog()
		if err != nil {
			return err
		}
		d, err := doc.LoadFile(args[0])
		if err != nil {
			return err
		}
		initial, err := doc.ToTree(d, reg.IsContainer)
		if err != nil {
			return fmt.Errorf("build tree: %w", err)
		}

		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("read script %s: %w", args[1], err)
		}
		var script []action
		if err := oj.Unmarshal(data, &script); err != nil {
			return fmt.Errorf("parse script %s: %w", args[1], err)
		}

		sess := editor.NewSession(reg.IsContainer, initial, cfg.HistoryLimit)
		for i, a := range script {
			changed, err := runAction(sess, reg.Fresh, a)
			if err != nil {
				return fmt.Errorf("step %d (%s): %w", i+1, a.Action, err)
			}
			status := "ok"
			if !changed {
				status = "no-op"
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "step %d: %s %s\n", i+1, a.Action, status)
		}

		result := doc.FromTree(sess.Tree(), d.Title)
		if applyOut == "" {
			out, err := oj.Marshal(result, 2)
			if err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}
		return doc.SaveFile(applyOut, result)
	},
}

type freshFunc func(componentType string) (*tree.Instance, bool)

func runAction(sess *editor.Session, fresh freshFunc, a action) (bool, error) {
	switch a.Action {
	case "insert":
		node, ok := fresh(a.Type)
		if !ok {
			return false, fmt.Errorf("unknown component type %q", a.Type)
		}
		if len(a.Props) > 0 {
			if node.Props == nil {
				node.Props = tree.Props{}
			}
			for k, v := range a.Props {
				node.Props[k] = v
			}
		}
		return sess.Insert(node, a.Parent, a.index()), nil
	case "remove":
		return sess.Remove(a.ID), nil
	case "move":
		return sess.Move(a.ID, a.Parent, a.index()), nil
	case "update":
		return sess.UpdateProps(a.ID, tree.Props(a.Props)), nil
	case "duplicate":
		_, ok := sess.Duplicate(a.ID)
		return ok, nil
	case "copy":
		return sess.Copy(a.ID), nil
	case "cut":
		return sess.Cut(a.ID), nil
	case "paste":
		_, ok := sess.Paste(a.Parent, a.index())
		return ok, nil
	case "select":
		sess.Select(a.ID)
		return true, nil
	case "undo":
		return sess.Undo(), nil
	case "redo":
		return sess.Redo(), nil
	default:
		return false, fmt.Errorf("unknown action %q", a.Action)
	}
}
