package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/curvedit/internal/cli"
	"github.com/aretw0/curvedit/internal/compiler"
	"github.com/aretw0/curvedit/internal/presentation/tui"
)

// edit opens every table, applies fn and saves the tables it changed.
func edit(cmd *cobra.Command, fn func(s *cli.Session) (string, error)) error {
	s, err := openSession(cmd, nil)
	if err != nil {
		return err
	}
	msg, err := fn(s)
	if err != nil {
		return err
	}
	if err := s.Editor.SaveAll(cmd.Context()); err != nil {
		return err
	}
	tui.NewStatus(os.Stdout).Success("%s", msg)
	return nil
}

var renameCmd = &cobra.Command{
	Use:   "rename <curve> <new-name>",
	Short: "Rename a curve and update every reference to it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return edit(cmd, func(s *cli.Session) (string, error) {
			n, err := s.Editor.Rename(args[0], args[1])
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("renamed %s to %s (%d references updated)", args[0], args[1], n), nil
		})
	},
}

var addCurveCmd = &cobra.Command{
	Use:   "add-curve <table> <name>",
	Short: "Append a new linear curve to a table",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return edit(cmd, func(s *cli.Session) (string, error) {
			if _, err := s.Editor.Document(args[0]); err != nil {
				if _, err := s.Editor.Create(args[0]); err != nil {
					return "", err
				}
			}
			if _, err := s.Editor.AddCurve(args[0], args[1]); err != nil {
				return "", err
			}
			return fmt.Sprintf("added %s to %s", args[1], args[0]), nil
		})
	},
}

var removeCurveCmd = &cobra.Command{
	Use:   "remove-curve <curve>",
	Short: "Delete a curve",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return edit(cmd, func(s *cli.Session) (string, error) {
			if err := s.Editor.RemoveCurve(args[0]); err != nil {
				return "", err
			}
			return fmt.Sprintf("removed %s", args[0]), nil
		})
	},
}

var keyframeCmd = &cobra.Command{
	Use:   "keyframe",
	Short: "Edit the keyframes of a curve",
}

var keyframeAddCmd = &cobra.Command{
	Use:   "add <curve> <x> <y>",
	Short: "Insert a Constant keyframe",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := parseFloat(args[1])
		if err != nil {
			return err
		}
		y, err := parseFloat(args[2])
		if err != nil {
			return err
		}
		snap, err := snapFlag(cmd)
		if err != nil {
			return err
		}
		return edit(cmd, func(s *cli.Session) (string, error) {
			i, err := s.Editor.InsertKeyframe(args[0], x, y, snap)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("inserted keyframe %d into %s", i, args[0]), nil
		})
	},
}

var keyframeRemoveCmd = &cobra.Command{
	Use:   "remove <curve> <index>",
	Short: "Delete a keyframe",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		return edit(cmd, func(s *cli.Session) (string, error) {
			if err := s.Editor.RemoveKeyframe(args[0], i); err != nil {
				return "", err
			}
			return fmt.Sprintf("removed keyframe %d from %s", i, args[0]), nil
		})
	},
}

var keyframeMoveCmd = &cobra.Command{
	Use:   "move <curve> <index> <x> <y>",
	Short: "Move a keyframe, keeping it between its neighbours",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		x, err := parseFloat(args[2])
		if err != nil {
			return err
		}
		y, err := parseFloat(args[3])
		if err != nil {
			return err
		}
		snap, err := snapFlag(cmd)
		if err != nil {
			return err
		}
		return edit(cmd, func(s *cli.Session) (string, error) {
			kf, err := s.Editor.MoveKeyframe(args[0], i, x, y, snap)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("moved keyframe %d of %s to (%s, %s)", i, args[0], formatFloat(kf.X), formatFloat(kf.Y)), nil
		})
	},
}

var keyframeSegmentCmd = &cobra.Command{
	Use:   "segment <curve> <index> <segment...>",
	Short: "Set the interpolation leaving a keyframe",
	Example: `  curvedit keyframe segment Fade 0 Polynomial +Degree: 3 +Ease In: YES
  curvedit keyframe segment Fade 1 Subcurve +Curve: EaseOutCirc`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		seg, err := compiler.ParseSegment(strings.Join(args[2:], " "))
		if err != nil {
			return err
		}
		return edit(cmd, func(s *cli.Session) (string, error) {
			if err := s.Editor.SetSegment(args[0], i, seg); err != nil {
				return "", err
			}
			return fmt.Sprintf("set segment %d of %s to %s", i, args[0], seg.Kind()), nil
		})
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(addCurveCmd)
	rootCmd.AddCommand(removeCurveCmd)
	rootCmd.AddCommand(keyframeCmd)

	keyframeCmd.AddCommand(keyframeAddCmd, keyframeRemoveCmd, keyframeMoveCmd, keyframeSegmentCmd)
	for _, c := range []*cobra.Command{keyframeAddCmd, keyframeMoveCmd} {
		c.Flags().String("snap", "none", "Snap mode: none, x, y or curve")
	}
}
