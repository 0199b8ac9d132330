// Package script exposes arbor views to an embedded scripting runtime.
//
// A [Bridge] is created per scene and hands out opaque [Handle] values
// instead of pointers. Objects are built by class name with
// [Bridge.Construct] and driven through a fixed method table with
// [Bridge.Call]:
//
//	b := script.NewBridge(scene)
//	defer b.Close()
//
//	list, _ := b.Construct("ScrollView", b.Root(), 10, 10, 200, 300)
//	b.Call("ScrollView_SetContentSize", list, 200, 1200)
//	b.Call("ScrollView_Scroll", list, 0, -40)
//
// The table is closed and built once; [Methods] and [Doc] describe it so a
// binding layer can generate its wrappers. Every failure, including tree
// contract violations that would panic in arbor, is returned as an error
// wrapping one of the package's sentinel errors.
package script
