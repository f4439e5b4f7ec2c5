// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(deltaGuide)
	app.Add(pathwayFilesGuide)
	app.Add(projectsGuide)
	app.Add(reportFilesGuide)
	app.Add(taxonomyFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
Metataxa requires several files to read and process metagenomic data. To
reduce the burden of keeping track of many files, a single project file is
used to hold the reference of all files required in the analysis. This guide
explains the structure of the file, but most of the time, the best and most
secure way to edit or view this file is by using metataxa commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# metataxa project files
	dataset	path
	taxonomy	functional_and_taxonomic_table.txt.gz
	pathways	pathways.tab
	params	params.tab
	report	report.tab

The valid file types are:

- ORF taxonomic annotations. Defined by the dataset keyword "taxonomy". The
  recommended way to add a taxonomy file is by using the command
  'metataxa add'.
- Pathway ORFs. Defined by the dataset keyword "pathways". The recommended
  way to add a pathway file is by using the command 'metataxa add'.
- Subsampling parameters. Defined by the dataset keyword "params". This file
  contains the parameters used to estimate confidence intervals. The
  recommended way to edit the parameters is by using the command
  'metataxa param'.
- Distinctness report. Defined by the dataset keyword "report". This file is
  written by the command 'metataxa delta'.
	`,
}

var taxonomyFilesGuide = &command.Command{
	Usage: "taxonomy-files",
	Short: "about ORF taxonomy files",
	Long: `
The taxonomic annotation of the ORFs is read from a tab-delimited file without
header, for example, the functional and taxonomic table produced by
MetaPathways. The file can be compressed with gzip (the file name must end in
".gz").

Only two columns are used:

	- the first column, for the ID of the ORF
	- the ninth column, for the taxonomic annotation of the ORF

Any other column is ignored, as well as rows with less than nine columns.

The taxonomic annotation is a lineage of taxon names, from the root to the
most specific taxon, separated by semicolons. A trailing taxon ID in
parenthesis is removed. Only annotations that contain the "root" marker are
used. Here is an example of a valid annotation:

	root;cellular organisms;Bacteria;Proteobacteria;Gammaproteobacteria (1236)

Lines starting with '#' are ignored.
	`,
}

var pathwayFilesGuide = &command.Command{
	Usage: "pathway-files",
	Short: "about pathway files",
	Long: `
The ORFs of each metabolic pathway are read from a tab-delimited file without
header. The file can be compressed with gzip (the file name must end in
".gz").

The first column is the ID of the pathway, and each additional column is the
ID of an ORF found in the pathway. Repeated ORFs in a row are ignored. Here is
an example file:

	# pathways
	GLYCOLYSIS	O_1	O_2	O_7
	TCA	O_3	O_4

Rows with less than two columns, and lines starting with '#', are ignored.
	`,
}

var reportFilesGuide = &command.Command{
	Usage: "report-files",
	Short: "about distinctness report files",
	Long: `
The taxonomic distinctness of each pathway is stored in a tab-delimited file
with the following columns:

	- pathway  the ID of the pathway
	- orfs     the number of ORFs in the pathway
	- species  the number of distinct lineages in the pathway

and for each statistic, its value, and the lower and upper bounds of its
confidence interval, for example "delta", "delta-low", and "delta-high". The
statistics are:

	- delta           Delta
	- delta-star      Delta*
	- delta-plus      Delta+
	- wtd-delta       Delta with WTD weights
	- wtd-delta-star  Delta* with WTD weights
	- wtd-delta-plus  Delta+ with WTD weights

Undefined values are indicated with "NA".
	`,
}

var deltaGuide = &command.Command{
	Usage: "delta-statistics",
	Short: "about taxonomic distinctness statistics",
	Long: `
The taxonomic annotations of the ORFs of a pathway are used to build a
taxonomy tree, in which each taxon keeps the number of ORFs annotated to it.

For each edge of the tree, the number of pairs of ORFs separated by the edge
is the product of the number of ORFs below the edge and the number of ORFs
outside it. The sum of these products over all edges is used to calculate the
statistics:

	- Delta   the sum is divided by the number of pairs of ORFs.
	- Delta*  the sum is divided by the sum of the products of the counts
	          of each pair of taxa.
	- Delta+  as Delta, but each taxon is counted only once
	          (presence-absence data).

With WTD weights, the product of each edge is multiplied by 0.5 raised to
the depth of the edge, so edges closer to the root have a larger weight.

Confidence intervals are estimated by subsampling. In each replicate, each
ORF is kept with a fixed probability (the retain probability), and the
statistic is calculated again. The interval is a Student's t interval of the
mean of the replicates.
	`,
}
