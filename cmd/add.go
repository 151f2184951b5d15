package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wortkiste/wortkiste/internal/app"
	"github.com/wortkiste/wortkiste/internal/entity"
)

const (
	addWordsKey = "add.words"
	addTagsKey  = "add.tags"
	addTypeKey  = "add.type"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Look up words online and add them to your dictionary",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("initialize: %w", err)
		}
		defer cleanup()

		words := viper.GetStringSlice(addWordsKey)
		tags := viper.GetStringSlice(addTagsKey)
		if len(words) == 0 {
			return errors.New("at least one word is required, use --words")
		}

		var filter entity.WordType
		if raw := viper.GetString(addTypeKey); raw != "" {
			parsed, ok := entity.ParseWordType(raw)
			if !ok {
				return fmt.Errorf("%w: %q", entity.ErrInvalidWordType, raw)
			}
			filter = parsed
		}

		cmd.Printf("tags: %s\n", strings.Join(tags, ", "))
		for _, word := range words {
			outcomes, err := container.Add.AddWord(ctx, word, tags, filter)
			if err != nil {
				// A corrupt store fails every remaining word the same way.
				if errors.Is(err, entity.ErrCorruptStore) {
					return err
				}
				cmd.Printf("Could not add %s: %v\n", word, err)
				continue
			}
			if len(outcomes) == 0 {
				cmd.Printf("Could not find a translation for %s\n", word)
				continue
			}
			for _, outcome := range outcomes {
				if outcome.Added {
					cmd.Printf("Added %s [%s]: %s to the dictionary\n",
						outcome.Entry.Word, outcome.Entry.Type, strings.Join(outcome.Entry.Translations, ", "))
				} else {
					cmd.Printf("%s [%s] is already in your dictionary. Skipping\n",
						outcome.Entry.Word, outcome.Entry.Type)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringSlice("words", nil, "words to look up and add")
	addCmd.Flags().StringSlice("tags", nil, "tags attached to every entry added by this call")
	addCmd.Flags().String("type", "", "only add entries of this type (der|die|das|adv|adj|conj|prep|verb)")

	bindFlagToViper(addWordsKey, addCmd.Flags().Lookup("words"))
	bindFlagToViper(addTagsKey, addCmd.Flags().Lookup("tags"))
	bindFlagToViper(addTypeKey, addCmd.Flags().Lookup("type"))
}
