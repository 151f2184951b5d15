package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wortkiste/wortkiste/internal/adapter/speech"
	"github.com/wortkiste/wortkiste/internal/app"
	"github.com/wortkiste/wortkiste/internal/infrastructure/console"
	"github.com/wortkiste/wortkiste/internal/usecase"
)

const (
	quizMuteKey   = "quiz.mute"
	quizRevertKey = "quiz.revert"
	quizTagKey    = "quiz.tag"
	quizMissedKey = "quiz.missed"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <rounds>",
	Short: "Drill your vocabulary in randomized recall rounds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rounds, err := strconv.Atoi(args[0])
		if err != nil || rounds <= 0 {
			return fmt.Errorf("round count must be a positive number, got %q", args[0])
		}

		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("initialize: %w", err)
		}
		defer cleanup()

		muted := viper.GetBool(quizMuteKey)
		terminal := console.New(muted)
		speaker := speech.NewSpeaker(container.Config, muted, container.Logger)

		opts := usecase.SessionOptions{
			Rounds:     rounds,
			Tag:        viper.GetString(quizTagKey),
			MissedOnly: viper.GetBool(quizMissedKey),
			Revert:     viper.GetBool(quizRevertKey),
		}
		_, err = container.Quiz.Run(cmd.Context(), opts, terminal, terminal, speaker)
		return err
	},
}

func init() {
	rootCmd.AddCommand(quizCmd)

	quizCmd.Flags().Bool("mute", false, "mute sound effects and banner pacing")
	quizCmd.Flags().Bool("revert", false, "show the translation, ask for the word")
	quizCmd.Flags().String("tag", "", "only drill entries carrying this tag")
	quizCmd.Flags().Bool("missed", false, "only drill words missed today")

	bindFlagToViper(quizMuteKey, quizCmd.Flags().Lookup("mute"))
	bindFlagToViper(quizRevertKey, quizCmd.Flags().Lookup("revert"))
	bindFlagToViper(quizTagKey, quizCmd.Flags().Lookup("tag"))
	bindFlagToViper(quizMissedKey, quizCmd.Flags().Lookup("missed"))
}
