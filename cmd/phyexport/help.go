// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(alignmentFilesGuide)
	app.Add(colorFilesGuide)
	app.Add(configFilesGuide)
	app.Add(latLongFilesGuide)
	app.Add(metadataFilesGuide)
	app.Add(projectsGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
PhyExport requires several files to export an annotated tree. To reduce the
burden of keeping track of many files, a single project file is used to hold
the reference of all files required in the export. This guide explains the
structure of the file, but most of the time, the best and most secure way to
edit or view this file is by using the commands 'phyexport add' and
'phyexport prj'.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file
	- feature  for the gene of an alignment file

Here is an example file:

	# phyexport project files
	dataset	path	feature
	tree	tree.nwk
	nodedata	node-data.tab
	colors	colors.tab
	latlong	lat-long.tab
	reference	reference.gff
	config	config.toml
	alignment	nuc.fasta	nuc
	alignment	rpoB.fasta	rpoB
	tree-alignment	nuc-tree.fasta	nuc

The valid file types are:

- Trees. Defined by the dataset keyword "tree". A phylogenetic tree in newick
  format. Internal nodes must be labeled, as the labels are used to find the
  metadata of each node.
- Node metadata. Defined by the dataset keyword "nodedata". See
  'phyexport help metadata-files'.
- Trait colors. Defined by the dataset keyword "colors". See
  'phyexport help color-files'.
- Geographic coordinates. Defined by the dataset keyword "latlong". See
  'phyexport help latlong-files'.
- Reference genome. Defined by the dataset keyword "reference". A GFF file
  with the features of the reference genome. Only CDS features are used.
- Configuration. Defined by the dataset keyword "config". See
  'phyexport help config-files'.
- Alignments. Defined by the dataset keywords "alignment" and
  "tree-alignment". See 'phyexport help alignment-files'.
	`,
}

var metadataFilesGuide = &command.Command{
	Usage: "metadata-files",
	Short: "about node metadata files",
	Long: `
The metadata of the tree nodes is stored in a tab-delimited file. Each row of
the file is a node of the tree, and each node of the tree, including the
internal nodes, must have a row in the file.

The file must contain the column "name", with the name of the node. Any other
column is a metadata field. Some fields have a special meaning:

	mutations           nucleotide mutations of the node, separated by
	                    commas, for example "C120T,G3011A".
	<gene>_mutations    amino acid mutations of a gene.
	branch_length       the length of the branch of the node.
	mutation_length     the number of mutations in the branch of the node.
	clock_length        the length of the branch in time units.
	clade               the ID of the node, used in sequence files.
	num_date            the sampling date of the node, as a decimal year.

The divergence of a node is calculated from the mutation length of the
branch, or from the branch length if the mutation length is undefined.

Any other field is exported as a node attribute.

Here is an example file:

	name	clade	num_date	mutation_length	mutations	rpoB_mutations	country	region
	NODE_0	0	2014.02	0.0			brazil	south_america
	A/Brazil/1/2015	1	2015.31	0.0012	C120T,G3011A	S450L	brazil	south_america
	`,
}

var colorFilesGuide = &command.Command{
	Usage: "color-files",
	Short: "about trait color files",
	Long: `
The colors of the categories of a trait are stored in a tab-delimited file
without header. Each line of the file contains three fields:

	trait     the name of the trait
	category  a value of the trait
	color     the color of the category, as an hexadecimal RGB value

Lines without exactly three fields are ignored. The order of the categories
is kept in the metadata file.

Here is an example file:

	# trait colors
	region	asia	#3F4FCC
	region	europe	#5A97C1
	country	china	#4A56C7

A color file can be created with the command 'phyexport colors'.
	`,
}

var latLongFilesGuide = &command.Command{
	Usage: "latlong-files",
	Short: "about geographic coordinate files",
	Long: `
The coordinates of the geographic places are stored in a tab-delimited file
with the following columns:

	place      the name of the place
	latitude   the latitude of the place, in degrees
	longitude  the longitude of the place, in degrees

Any other column will be ignored. The places are matched with the values of
the "region" and "country" fields of the node metadata. Places without
coordinates are ignored.

Here is an example file:

	# place coordinates
	place	latitude	longitude
	china	35.86166	104.195397
	japan	36.204824	138.252924
	`,
}

var configFilesGuide = &command.Command{
	Usage: "config-files",
	Short: "about configuration files",
	Long: `
The configuration of the export is stored in a TOML file. It contains the
provenance values used in the metadata file, and optionally, the node fields
to be exported. Here is an example file:

	title = "NextTB"
	maintainer = "Emma Hodcroft"
	commit = "unknown"
	fields = ["clade", "num_date", "country", "region"]

	[author_info.hodcroft]
	paper_url = "https://example.org/paper"
	journal = "Unpublished"
	title = "Tuberculosis phylogeny"
	n = 12

If the project does not define a configuration file, or a value is
undefined, a default value is used. If no fields are defined, the columns of
the node metadata file are used.
	`,
}

var alignmentFilesGuide = &command.Command{
	Usage: "alignment-files",
	Short: "about alignment files",
	Long: `
Alignments are stored as FASTA files, one file for each gene. The name of
each sequence is the name of a tree node. All the sequences in a file must
have the same length.

There are two kinds of alignments in a project. Alignments with the dataset
keyword "alignment" contain the sequences of the terminals, and they are used
to calculate the diversity of each site. Alignments with the dataset keyword
"tree-alignment" contain the sequences of all tree nodes, including the root
and the internal nodes, and they are used to export the sequences of the
nodes.

The name of the gene is set in the project file with the field "feature".
Use "nuc" for the nucleotide alignment of the genome. Any other name is taken
as a protein, and it should be defined as a feature in the reference genome.
	`,
}
