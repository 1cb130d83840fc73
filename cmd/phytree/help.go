// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(projectsGuide)
	app.Add(treeFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
PhyTree requires several files to read and process phylogenetic data. To
reduce the burden of keeping track of many files, a single project file is
used to hold the reference of all files required in the analysis. This guide
explains the structure of the file, but most of the time, the best and most
secure way to edit or view this file is by using phytree commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# phytree project files
	dataset	path
	characters	characters.tab
	trees	trees.tab

The valid file types are:

- Phylogenetic trees. Defined by the dataset keyword "trees". This file
  contains one or more trees with branch lengths in the form of a
  tab-delimited file. The recommended way to add a tree file is by using the
  command 'phytree tree add'.
- Character matrices. Defined by the dataset keyword "characters". This file
  contains a discrete-character data matrix in the form of a tab-delimited
  file. The recommended way to add a matrix is by using the command
  'phytree matrix add'.
	`,
}

var treeFilesGuide = &command.Command{
	Usage: "treefiles",
	Short: "about tree files",
	Long: `
Trees in a PhyTree project are stored in a tab-delimited file. Each row of
the file stores a node of a tree, with the following fields:

	- tree    for the name of the tree
	- node    for the ID of the node
	- parent  for the ID of the parent of the node
	          (-1 is used for the root)
	- brlen   for the length of the branch
	          that connects the node with its parent
	- label   for the label of an internal node
	          (usually a support value; can be empty)
	- taxon   for the taxon name of a terminal node

Parent nodes must be defined always before its descendants. Here is an
example file:

	# phylogenetic trees
	tree	node	parent	brlen	label	taxon
	tree-1	0	-1	0.000000
	tree-1	1	0	0.950000		Struthio camelus
	tree-1	2	0	0.250000	98
	tree-1	3	2	0.700000		Rhea americana
	tree-1	4	2	0.650000		Casuarius casuarius

Trees in parenthetical (newick) format can be imported with the command
'phytree tree add --newick', and exported with the command
'phytree tree newick'.
	`,
}
