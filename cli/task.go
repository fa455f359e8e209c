package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/goto/screener/core/task"
	"github.com/spf13/cobra"
)

func tasksCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Track tasks and their barriers",
		Annotations: map[string]string{
			"group": "core",
		},
		Example: heredoc.Doc(`
		$ screener task list
		$ screener task view <id>
		$ screener task status <id> <status>
		$ screener task block <id> <barrier>
		$ screener task unblock <id> <barrier>
		$ screener task reset
		`),
	}

	cmd.AddCommand(
		listTasksCommand(cfg),
		viewTaskCommand(cfg),
		updateTaskStatusCommand(cfg),
		blockTaskCommand(cfg),
		unblockTaskCommand(cfg),
		resetTasksCommand(cfg),
	)

	return cmd
}

func listTasksCommand(cfg *Config) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list tasks matching the given criteria",
		Example: heredoc.Doc(`
			$ screener task list
			$ screener task list -f statuses=todo,in_progress -f due_before=2024-07-01 --sort priority --sort_dir desc
			$ screener task list -f blocked=true
		`),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			clnt, err := newClient(cfg)
			if err != nil {
				return err
			}

			res, err := clnt.ListTasks(cmd.Context(), flags.params())
			if err != nil {
				return err
			}

			spinner.Stop()
			if flags.output == outputJSON {
				printJSON(res)
				return nil
			}

			report := [][]string{}
			report = append(report, []string{"ID", "TITLE", "ASSIGNEE", "PRIORITY", "STATUS", "DUE", "BARRIERS"})
			for _, t := range res.Items {
				report = append(report, []string{
					term.Bluef(t.ID), t.Title, fmtOrDash(t.Assignee), strconv.Itoa(t.Priority),
					statusColor(t.Status), fmtDue(t), strconv.Itoa(len(t.Barriers)),
				})
			}
			printer.Table(os.Stdout, report)
			fmt.Println(pageFooter(res))
			return nil
		},
	}

	flags.register(cmd, "filter criteria, e.g. statuses=blocked or assignees=dana")

	return cmd
}

func viewTaskCommand(cfg *Config) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "view <id>",
		Short: "view the task with the given id",
		Example: heredoc.Doc(`
			$ screener task view T-1
		`),
		Args: cobra.ExactArgs(1),
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			clnt, err := newClient(cfg)
			if err != nil {
				return err
			}

			t, err := clnt.GetTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			spinner.Stop()
			printTask(t, output)
			return nil
		},
	}

	outputFlag(cmd, &output)

	return cmd
}

func updateTaskStatusCommand(cfg *Config) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "move a task to another status",
		Long: heredoc.Doc(`
			Move a task to another status. A task with outstanding barriers
			stays blocked until every barrier is removed.
		`),
		Example: heredoc.Doc(`
			$ screener task status T-1 in_progress
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			clnt, err := newClient(cfg)
			if err != nil {
				return err
			}

			t, err := clnt.UpdateTaskStatus(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			spinner.Stop()
			printTask(t, output)
			return nil
		},
	}

	outputFlag(cmd, &output)

	return cmd
}

func blockTaskCommand(cfg *Config) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "block <id> <barrier>",
		Short: "add a barrier to a task, blocking it",
		Example: heredoc.Doc(`
			$ screener task block T-1 "waiting on review"
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			clnt, err := newClient(cfg)
			if err != nil {
				return err
			}

			t, err := clnt.AddTaskBarrier(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			spinner.Stop()
			printTask(t, output)
			return nil
		},
	}

	outputFlag(cmd, &output)

	return cmd
}

func unblockTaskCommand(cfg *Config) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "unblock <id> <barrier>",
		Short: "remove a barrier from a task",
		Example: heredoc.Doc(`
			$ screener task unblock T-1 "waiting on review"
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			clnt, err := newClient(cfg)
			if err != nil {
				return err
			}

			t, err := clnt.RemoveTaskBarrier(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			spinner.Stop()
			printTask(t, output)
			return nil
		},
	}

	outputFlag(cmd, &output)

	return cmd
}

func resetTasksCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "discard every task change since the last load",
		Example: heredoc.Doc(`
			$ screener task reset
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			clnt, err := newClient(cfg)
			if err != nil {
				return err
			}

			if err := clnt.ResetTasks(cmd.Context()); err != nil {
				return err
			}

			spinner.Stop()
			fmt.Println(term.Greenf("tasks reset"))
			return nil
		},
	}

	return cmd
}

func printTask(t task.Task, output string) {
	if output == outputJSON {
		printJSON(t)
		return
	}

	printer.Table(os.Stdout, [][]string{
		{"ID", term.Bluef(t.ID)},
		{"TITLE", t.Title},
		{"DESCRIPTION", fmtOrDash(t.Description)},
		{"ASSIGNEE", fmtOrDash(t.Assignee)},
		{"PRIORITY", strconv.Itoa(t.Priority)},
		{"STATUS", statusColor(t.Status)},
		{"DUE", fmtDue(t)},
		{"BARRIERS", fmtList(t.Barriers)},
	})

	for _, c := range t.Changelog {
		fmt.Println(term.Cyanf("%s %v: %v -> %v", c.Type, c.Path, c.From, c.To))
	}
}

func statusColor(s task.Status) string {
	switch s {
	case task.StatusDone:
		return term.Greenf(string(s))
	case task.StatusBlocked:
		return term.Redf(string(s))
	case task.StatusInProgress:
		return term.Yellowf(string(s))
	}
	return string(s)
}

func fmtDue(t task.Task) string {
	if t.DueDate == nil {
		return "-"
	}
	return t.DueDate.Format("2006-01-02")
}
