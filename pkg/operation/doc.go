/*
Package operation implements the conversion of record files.

	+-------------+
	|   source    |
	| (read rows) |
	+------+------+
	       |
	+------+------+
	|   record    |
	| (transform) |
	+------+------+
	       |
	+------+------+
	|  document   |
	|   (write)   |
	+-------------+

🎯 Purpose:
- Orchestrates reading, transforming and writing one file
- Converts batches of files selected by a glob pattern
- Previews transformed rows without writing

🔄 Flow:
1. Picks a reader from the input extension (or the configured format)
2. Reads the whole input into memory
3. Transforms every row into one record, in order
4. Writes the document once; batches log one line per file

⚡ Key Responsibilities:
- Single pass, single owner: no goroutines, no shared state
- Errors from reading or writing are returned unchanged in meaning
- Missing data never fails, it is defaulted by the transformer

🔍 Example:

	conv, err := operation.New(operation.Options{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}
	res, err := conv.Convert(ctx, "input.csv", "output.json")
	if err != nil {
		return err
	}
	logger.Done(res.Records)
*/
package operation
