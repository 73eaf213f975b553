// Package pagination turns offset/size paginated CurseForge endpoints into a
// single lazy sequence of records.
//
// CurseForge paginates with an "index" (record offset) and a "pageSize"
// request parameter and reports a descriptor with every page:
//
//	"pagination": {"index": 0, "pageSize": 50, "resultCount": 50, "totalCount": 1234}
//
// No paginated query can reach past MaxResults (10,000) records, whatever
// totalCount says.
//
// The package has two layers:
//   - Delegate binds one endpoint's fetch function and fixed parameters and
//     owns the cursor (next offset, last descriptor).
//   - Engine drives a delegate one page at a time, buffers the page and
//     yields records in server order until the cap or the total is reached.
//
// Example usage:
//
//	fetch := func(ctx context.Context, p Params, offset, size int) ([]Mod, pagination.Descriptor, error) {
//		...
//	}
//	it := pagination.Iterate("mods/search", fetch, params, 0, pagination.DefaultConfig())
//	for {
//		mod, err := it.Next(ctx)
//		if errors.Is(err, pagination.Done) {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		...
//	}
//
// An engine has at most one fetch in flight and is not safe for concurrent
// use. A failed engine stays failed; resume with Cursor and a fresh engine
// (see pkg/checkpoint).
package pagination
