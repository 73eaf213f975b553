package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Sternrassler/curseforge-client/pkg/checkpoint"
	"github.com/Sternrassler/curseforge-client/pkg/client"
	"github.com/Sternrassler/curseforge-client/pkg/types"
)

func newGamesCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "games",
		Short: "List the games available to the API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := types.GamesParams{}
			key, err := a.checkpointKey(client.RouteGames, nil, params)
			if err != nil {
				return err
			}
			return drain(cmd.Context(), a, a.client.GamesIter(params), key, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of records to print (0 = all)")
	return cmd
}

func newSearchCommand(a *app) *cobra.Command {
	var (
		limit       int
		gameID      int
		classID     int
		filter      string
		gameVersion string
		sortField   string
		sortOrder   string
		loader      string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search mods of a game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := types.SearchModsParams{
				GameID:       gameID,
				SearchFilter: filter,
				GameVersion:  gameVersion,
			}
			if cmd.Flags().Changed("class") {
				params.ClassID = &classID
			}
			if sortField != "" {
				f, ok := types.ParseSortField(sortField)
				if !ok {
					return fmt.Errorf("unknown sort field %q", sortField)
				}
				params.SortField = f
			}
			switch types.SortOrder(sortOrder) {
			case "":
			case types.SortAscending, types.SortDescending:
				params.SortOrder = types.SortOrder(sortOrder)
			default:
				return fmt.Errorf("unknown sort order %q (want asc or desc)", sortOrder)
			}
			if loader != "" {
				t, ok := types.ParseModLoaderType(loader)
				if !ok {
					return fmt.Errorf("unknown mod loader %q", loader)
				}
				params.ModLoaderType = &t
			}

			key, err := a.checkpointKey(client.RouteSearchMods, nil, params)
			if err != nil {
				return err
			}
			return drain(cmd.Context(), a, a.client.SearchModsIter(params), key, limit)
		},
	}

	cmd.Flags().IntVar(&gameID, "game", 0, "game id, e.g. 432 for Minecraft (required)")
	cmd.Flags().IntVar(&classID, "class", 0, "class id, e.g. 6 for mods")
	cmd.Flags().StringVar(&filter, "filter", "", "free text search filter")
	cmd.Flags().StringVar(&gameVersion, "game-version", "", "game version, e.g. 1.20.1")
	cmd.Flags().StringVar(&sortField, "sort", "", "sort field: featured, popularity, last-updated, name, author, total-downloads, category, game-version")
	cmd.Flags().StringVar(&sortOrder, "order", "", "sort order: asc or desc")
	cmd.Flags().StringVar(&loader, "loader", "", "mod loader: forge, fabric, quilt, neoforge, ...")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of records to print (0 = all)")
	_ = cmd.MarkFlagRequired("game")
	return cmd
}

func newFilesCommand(a *app) *cobra.Command {
	var (
		limit       int
		gameVersion string
		loader      string
	)

	cmd := &cobra.Command{
		Use:   "files <modId>",
		Short: "List the files of a mod",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modID, err := parseID(args[0])
			if err != nil {
				return err
			}

			params := types.ModFilesParams{GameVersion: gameVersion}
			if loader != "" {
				t, ok := types.ParseModLoaderType(loader)
				if !ok {
					return fmt.Errorf("unknown mod loader %q", loader)
				}
				params.ModLoaderType = &t
			}

			key, err := a.checkpointKey(client.RouteModFiles, map[string]string{"modId": args[0]}, params)
			if err != nil {
				return err
			}
			return drain(cmd.Context(), a, a.client.ModFilesIter(modID, params), key, limit)
		},
	}

	cmd.Flags().StringVar(&gameVersion, "game-version", "", "game version, e.g. 1.20.1")
	cmd.Flags().StringVar(&loader, "loader", "", "mod loader: forge, fabric, quilt, neoforge, ...")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of records to print (0 = all)")
	return cmd
}

func newModCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mod <modId>",
		Short: "Show a single mod",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modID, err := parseID(args[0])
			if err != nil {
				return err
			}
			mod, err := a.client.Mod(cmd.Context(), modID)
			if err != nil {
				return err
			}
			return writeRecord(a.out, mod)
		},
	}
}

// checkpointKey returns nil when checkpoints are off.
func (a *app) checkpointKey(route string, pathParams map[string]string, params any) (*checkpoint.Key, error) {
	if a.store == nil {
		return nil, nil
	}
	key, err := checkpoint.NewKey(route, pathParams, params)
	if err != nil {
		return nil, err
	}
	return &key, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
