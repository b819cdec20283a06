/*
Package labels places text labels on rendered charts so that they do not overlap the data, each other or their connectors.

Scatter labels are placed greedily, one at a time, starting with the point farthest from the bulk of the data. Every label is tried at a grid of positions around its anchor; positions whose box would cover ink of the rendered chart or a previously placed label are discarded, and the remaining position with the lowest score wins. The score favors positions away from the data and close to the anchor. Labels that do not fit are wrapped to narrower widths and finally dropped.

Line labels are put at the right of a chart next to the end of each series, with their vertical positions spread apart by Spread.

Charts are accessed through the Chart and LineChart interfaces, see the canvasplot, gonumplot and gochart packages for implementations.
*/
package labels
