package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spboyer/hare/internal/aggregate"
	"github.com/spf13/cobra"
)

func newStackCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stack <dataset>",
		Short: "Show how each speaker's toxicity status builds up over one conversation",
		Long: `Align the status history of one conversation into one series per speaker
and stack them.

Speakers who have not spoken yet count as zero. The stack gives, per turn,
the running total over speakers in the order they first spoke, and the bands
give the lower and upper boundary of each speaker in a stacked area plot.`,
		Args: cobra.ExactArgs(1),
		RunE: stackCommandE,
	}

	cmd.Flags().IntP("conversation", "c", 0, "Index of the conversation within the dataset")
	addFormatFlag(cmd)

	return cmd
}

// stackReport is the JSON document produced by the stack command.
type stackReport struct {
	Dataset      string           `json:"dataset"`
	Index        int              `json:"index"`
	Conversation string           `json:"conversation"`
	Speakers     []string         `json:"speakers"`
	Series       [][]float64      `json:"series"`
	Stack        [][]float64      `json:"stack"`
	Bands        []aggregate.Band `json:"bands"`
}

func stackCommandE(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}
	format, err := resolveFormat(cmd, cfg)
	if err != nil {
		return err
	}
	index, err := cmd.Flags().GetInt("conversation")
	if err != nil {
		return err
	}

	h, err := loadEvaluator(args[0], cfg)
	if err != nil {
		return err
	}

	alignment, err := aggregate.SpeakerToxicity(h, index)
	if err != nil {
		return err
	}

	report := stackReport{
		Dataset:      h.Name(),
		Index:        index,
		Conversation: h.Conversations()[index].ID,
		Speakers:     alignment.Speakers,
		Series:       alignment.Series,
		Stack:        alignment.Stack(),
		Bands:        alignment.Bands(),
	}

	if format == formatJSON {
		return writeJSON(cmd, report)
	}
	printStackTable(cmd.OutOrStdout(), report)
	return nil
}

func printStackTable(w io.Writer, r stackReport) {
	title := fmt.Sprintf("SPEAKER TOXICITY: %s #%d", r.Dataset, r.Index)
	if r.Conversation != "" {
		title += fmt.Sprintf(" (%s)", r.Conversation)
	}
	printBanner(w, title)

	if len(r.Stack) == 0 {
		fmt.Fprintln(w, "  Conversation has no utterances.") //nolint:errcheck
		return
	}

	header := append([]string{"Turn"}, r.Speakers...)
	header = append(header, "Total")

	top := r.Stack[len(r.Stack)-1]
	rows := make([][]string, 0, len(top))
	for t := range top {
		row := []string{strconv.Itoa(t)}
		for _, s := range r.Series {
			row = append(row, formatValue(s[t]))
		}
		row = append(row, formatValue(top[t]))
		rows = append(rows, row)
	}
	printTable(w, header, rows)
}
