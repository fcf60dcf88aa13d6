// Package rewrite reshapes the empty-state conditional of a stage table.
//
// The source shape renders a centered placeholder when the backing
// collection is empty and the table container otherwise:
//
//	{pendingItems.length === 0 ? (
//	  <div className="text-center py-12">
//	    <p className="text-muted-foreground">No pending items</p>
//	  </div>
//	) : (
//	  <div className="overflow-x-auto -mx-6 md:mx-0">
//	    <table>...<tbody>{pendingItems.map(...)}</tbody></table>
//	  </div>
//	)}
//
// The rewritten shape always renders the container and moves the condition
// into the row group, emitting one spanning row for the empty case:
//
//	<div className="overflow-x-auto -mx-6 md:mx-0">
//	  <table>...<tbody>
//	    {pendingItems.length === 0 ? (
//	      <tr><td colSpan={config.pendingColumns.length + 1} ...>No pending items</td></tr>
//	    ) : (
//	      {pendingItems.map(...)}
//	    )}</tbody></table>
//	</div>
//
// Matching is textual. The container ends at the first </div> followed by
// ")}", and the row group runs from the first <tbody> to the last </tbody>
// inside it; neither step understands nesting.
package rewrite
