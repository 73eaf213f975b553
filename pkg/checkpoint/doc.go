// Package checkpoint persists pagination cursors in Redis so a query that
// failed or was interrupted can resume where it stopped.
//
// # Basic Usage
//
//	store := checkpoint.New(redisClient)
//
//	key, err := checkpoint.NewKey(client.RouteSearchMods, nil, params)
//	if err != nil {
//		return err
//	}
//
//	it := c.SearchModsIter(params)
//	if _, err := checkpoint.Restore(ctx, store, key, it); err != nil {
//		return err
//	}
//
//	for mod, err := range it.All(ctx) {
//		if err != nil {
//			// Remember where we are, retry later.
//			_ = store.Save(ctx, key, it.Cursor(), 24*time.Hour)
//			return err
//		}
//		process(mod)
//	}
//	_ = store.Delete(ctx, key)
//
// # Keys
//
// Keys are derived from the route template, the path parameters and the
// query parameters of a query. The index and pageSize parameters are left
// out: they describe a position in the query, not the query itself.
//
//	cf:mods/search:gameId=432:searchFilter=jei
//
// # Metrics
//
// cf_checkpoint_operations_total{operation,result} counts save, load and
// delete calls by result (ok, miss, error).
package checkpoint
