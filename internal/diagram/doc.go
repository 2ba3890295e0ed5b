// Package diagram extracts i* model objects from draw.io XML exports.
//
// # Diagram Format
//
// draw.io wraps every annotated shape in an <object> element carrying the
// modeling attributes, with the geometry nested below:
//
//	<mxfile>
//	  <diagram>
//	    <mxGraphModel>
//	      <root>
//	        <object type="goal" label="Protein Folding" id="2">
//	          <mxCell style="ellipse" vertex="1"/>
//	        </object>
//	        <object type="task" label="&lt;div&gt;Use AES&lt;/div&gt;" id="3">
//	          <mxCell style="hexagon" vertex="1"/>
//	        </object>
//	      </root>
//	    </mxGraphModel>
//	  </diagram>
//	</mxfile>
//
// Only the type and label attributes are interpreted. Labels arrive as HTML
// fragments; Parse reduces them to plain text and also provides the
// normalized form keyword matching runs against.
//
// # Error Handling
//
// Malformed XML fails with a *ParseError carrying the file path and the
// decoder's line number. All parse errors match istar2uvl.ErrDiagramParse,
// which the CLI maps to its own exit code. Absent <object> elements are not
// an error: a diagram with no objects yields an empty slice.
package diagram
