/*
Package record holds the input row, output record and the transformer that
maps one to the other.

	+---------+     +-------------+     +----------+
	|   Row   | --> | Transformer | --> |  Record  |
	| (input) |     | fields      |     | (output) |
	+---------+     | extras      |     +----------+
	                +-------------+

🎯 Purpose:
- Rename and select a fixed list of columns
- Add extra fields found by case-insensitive column name
- Keep output keys in a stable order for serialization

🔄 Flow:
1. Each mapped column is copied to its output key ("" when absent)
2. Each extra key takes the first column whose lowercased name matches
3. An empty or missing extra value falls back to the field default

⚡ Rules:
- One record per row, in input order
- Every record carries every configured key
- The transformer never returns an error

🔍 Example:

	t := record.NewDefaultTransformer()
	row := record.NewRow([]string{"ID", "DATE"}, []string{"7", "2021-01-01"})
	rec := t.Transform(row)
	// rec: id=7 rank="" ... date=2021-01-01 post_id="" count=0
*/
package record
